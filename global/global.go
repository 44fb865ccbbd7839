package global

import (
	"context"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

// Logger for global logging
var Logger = log.New(os.Stderr, "", log.LstdFlags)

// InternalLogger for errors that should never happen in normal circumstances
var InternalLogger = log.New(os.Stderr, "internal: ", log.LstdFlags)

// MonitorLogger for expected but noteworthy failures
var MonitorLogger = log.New(os.Stderr, "monitor: ", log.LstdFlags)

// Context is the default context
var Context = context.Background()

// Validator validates decoded response bodys of data
var Validator = validator.New()

// JSON is the codec for all payload and storage serialization
var JSON = jsoniter.ConfigCompatibleWithStandardLibrary
