// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/models"
	"github.com/stretchr/testify/assert"
)

// ─────────────────────────────────────────────
// GetBuildInfo
// ─────────────────────────────────────────────

func TestGetBuildInfo_ReturnsConfiguredInfo(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("3.1.4", "2026-01-01", "abc123"), logger.Nop())

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "3.1.4", got.BuildVersion())
	assert.Equal(t, "2026-01-01", got.BuildDate())
	assert.Equal(t, "abc123", got.BuildCommit())
}

func TestGetBuildInfo_MissingValuesAreNA(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "N/A", got.BuildVersion())
	assert.Equal(t, "N/A", got.BuildDate())
	assert.Equal(t, "N/A", got.BuildCommit())
}

func TestGetBuildInfo_CancelledContext_StillReturnsInfo(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetBuildInfo(ctx).BuildVersion())
}
