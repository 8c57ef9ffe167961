package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name           string
		logLvl         string
		expectedError  bool
		expectedLogLvl zapcore.Level
	}{
		{
			name:           "Valid log level info",
			logLvl:         "info",
			expectedError:  false,
			expectedLogLvl: zapcore.InfoLevel,
		},
		{
			name:           "Valid log level error",
			logLvl:         "error",
			expectedError:  false,
			expectedLogLvl: zapcore.ErrorLevel,
		},
		{
			name:           "Valid log level debug",
			logLvl:         "debug",
			expectedError:  false,
			expectedLogLvl: zapcore.DebugLevel,
		},
		{
			name:          "Invalid log level",
			logLvl:        "invalid",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.logLvl)

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
