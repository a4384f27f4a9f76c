package lexbridge

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/pyrope-lang/pyrope/compiler/internal/lexer"
)

// bsonStream is the top-level BSON document; BSON cannot hold a bare array.
type bsonStream struct {
	Version int      `bson:"v"`
	Tokens  []Record `bson:"tokens"`
}

const bsonVersion = 1

// EncodeBSON serialises a scan result as a single BSON document, the
// binary hand-off format for out-of-process consumers.
func EncodeBSON(r lexer.Result) ([]byte, error) {
	data, err := bson.Marshal(bsonStream{Version: bsonVersion, Tokens: FromResult(r)})
	if err != nil {
		return nil, fmt.Errorf("encode bson: %w", err)
	}
	return data, nil
}

// DecodeBSON is the inverse of EncodeBSON.
func DecodeBSON(data []byte) (lexer.Result, error) {
	var doc bsonStream
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode bson: %w", err)
	}
	if doc.Version != bsonVersion {
		return nil, fmt.Errorf("decode bson: unsupported stream version %d", doc.Version)
	}
	return ToResult(doc.Tokens)
}
