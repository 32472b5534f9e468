package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/furnspace/furnspace/internal/common/constants"
)

var Tracer = otel.Tracer(constants.AppCartService)
