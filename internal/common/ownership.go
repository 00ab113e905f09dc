package common

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequireOwner kiểm tra userID có phải chủ sở hữu tài nguyên không.
// Mọi thao tác ghi trên tài nguyên có chủ đều phải đi qua kiểm tra này.
// Trả về ErrNotResourceOwner nếu không phải.
func RequireOwner(ownerID, userID primitive.ObjectID) error {
	if ownerID != userID {
		return ErrNotResourceOwner
	}
	return nil
}
