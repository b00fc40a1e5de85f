package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUser_IsAdmin(t *testing.T) {
	var missing *User

	assert.False(t, missing.IsAdmin())
	assert.False(t, (&User{Email: "guest@bistro.test"}).IsAdmin())
	assert.False(t, (&User{Email: "chef@bistro.test", Role: "chef"}).IsAdmin())
	assert.True(t, (&User{Email: "owner@bistro.test", Role: RoleAdmin}).IsAdmin())
}

func TestMenuItemPatch_SetFields(t *testing.T) {
	name := "Roast Duck Breast"
	price := 14.5

	fields := MenuItemPatch{Name: &name, Price: &price}.SetFields()

	assert.Equal(t, bson.M{"name": name, "price": price}, fields)
}

func TestMenuItemPatch_SetFields_Empty(t *testing.T) {
	assert.Empty(t, MenuItemPatch{}.SetFields())
}
