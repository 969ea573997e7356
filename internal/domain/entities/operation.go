package entities

// OperationResult summarizes a single store write. Field names follow the
// document-store driver results the frontend was written against.
type OperationResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	InsertedID    string `json:"insertedId,omitempty"`
	MatchedCount  int64  `json:"matchedCount,omitempty"`
	ModifiedCount int64  `json:"modifiedCount,omitempty"`
	UpsertedCount int64  `json:"upsertedCount,omitempty"`
	UpsertedID    string `json:"upsertedId,omitempty"`
	DeletedCount  int64  `json:"deletedCount,omitempty"`
}

// Inserted builds the result of a single insert
func Inserted(id string) *OperationResult {
	return &OperationResult{Acknowledged: true, InsertedID: id}
}
