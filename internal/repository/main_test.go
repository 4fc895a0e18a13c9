//go:build integration
// +build integration

package repository

import (
	"os"
	"testing"

	"onboarding-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunIntegrationTests(m, "repository"))
}
