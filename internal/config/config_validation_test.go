// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_FillsEmptyFields(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultDatabaseDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultSessionCookie, cfg.App.SessionCookieName)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{SessionCookieName: "custom_session"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/medtrack"}},
		Server:  Server{HTTPAddress: "0.0.0.0:9090"},
	}
	cfg.applyDefaults()

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/medtrack", cfg.Storage.DB.DSN)
	assert.Equal(t, "custom_session", cfg.App.SessionCookieName)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "valid after defaults",
			cfg: StructuredConfig{
				Storage: Storage{DB: DB{DSN: "medtrack.db"}},
				Server:  Server{HTTPAddress: "localhost:8080"},
			},
			wantErr: nil,
		},
		{
			name: "empty dsn",
			cfg: StructuredConfig{
				Server: Server{HTTPAddress: "localhost:8080"},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "empty address",
			cfg: StructuredConfig{
				Storage: Storage{DB: DB{DSN: "medtrack.db"}},
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "negative bcrypt cost",
			cfg: StructuredConfig{
				App:     App{BcryptCost: -1},
				Storage: Storage{DB: DB{DSN: "medtrack.db"}},
				Server:  Server{HTTPAddress: "localhost:8080"},
			},
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
