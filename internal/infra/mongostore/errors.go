package mongostore

import (
	"errors"

	"smart-parking/internal/infra"

	"go.mongodb.org/mongo-driver/mongo"
)

func wrapMongoErr(msg string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	case mongo.IsDuplicateKeyError(err):
		return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
	}
	return infra.WrapRepoErr(msg, err)
}
