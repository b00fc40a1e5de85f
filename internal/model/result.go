package model

// InsertResult mirrors the outcome of a single document insert.
// A soft rejection carries Message and a nil InsertedID.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged,omitempty"`
	InsertedID   interface{} `json:"insertedId"`
	Message      string      `json:"message,omitempty"`
}

// UpdateResult mirrors the outcome of a single document update.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// DeleteResult mirrors the outcome of a delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// PaymentRecordResult reports both steps of recording a payment.
type PaymentRecordResult struct {
	PaymentResult *InsertResult `json:"paymentResult"`
	DeleteResult  *DeleteResult `json:"deleteResult"`
}
