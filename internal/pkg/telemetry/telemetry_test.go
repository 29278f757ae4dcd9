package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-caravan/internal/errors"
	"github.com/KirkDiggler/rpg-caravan/internal/pkg/telemetry"
)

type TelemetryTestSuite struct {
	suite.Suite
}

func TestTelemetrySuite(t *testing.T) {
	suite.Run(t, new(TelemetryTestSuite))
}

func (s *TelemetryTestSuite) TestDisabledWithoutEndpoint() {
	for _, cfg := range []*telemetry.Config{nil, {ServiceName: "caravan"}} {
		shutdown, err := telemetry.Setup(context.Background(), cfg)
		s.Require().NoError(err)
		s.NoError(shutdown(context.Background()))
	}
}

func (s *TelemetryTestSuite) TestRequiresServiceName() {
	_, err := telemetry.Setup(context.Background(), &telemetry.Config{Endpoint: "http://localhost:4318"})
	s.True(errors.IsInvalidArgument(err))
}
