package msbuild_test

import (
	"path/filepath"
	"testing"

	"go.trai.ch/obtools/internal/adapters/msbuild"
	"go.trai.ch/obtools/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogRefresher_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("updated", "path", "App.csproj")

	msbuild.NewLogRefresher(log).Refresh(filepath.Join("src", "App", "App.csproj"))
}
