package upgrade

import (
	"testing"

	"github.com/leapstack-labs/spfxcheck/pkg/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectVersion(t *testing.T) {
	yoRc := func(v string) project.Document {
		return project.NewDocument(map[string]any{GeneratorKey: map[string]any{"version": v}})
	}
	pkg := func(v string) project.Document {
		return project.NewDocument(map[string]any{"dependencies": map[string]any{CoreLibraryPackage: v}})
	}

	tests := []struct {
		name    string
		docs    map[project.Slot]project.Document
		want    string
		wantErr bool
	}{
		{
			name: "generator metadata wins",
			docs: map[project.Slot]project.Document{
				project.SlotYoRc:    yoRc("1.4.1"),
				project.SlotPackage: pkg("~1.5.0"),
			},
			want: "1.4.1",
		},
		{
			name: "falls back to core library",
			docs: map[project.Slot]project.Document{
				project.SlotPackage: pkg("~1.4.0"),
			},
			want: "1.4.0",
		},
		{
			name: "caret and prerelease characters stripped",
			docs: map[project.Slot]project.Document{
				project.SlotPackage: pkg("^1.5.1-plusbeta"),
			},
			want: "1.5.1",
		},
		{
			name: "yo-rc without version falls back",
			docs: map[project.Slot]project.Document{
				project.SlotYoRc:    project.NewDocument(map[string]any{GeneratorKey: map[string]any{}}),
				project.SlotPackage: pkg("1.4.1"),
			},
			want: "1.4.1",
		},
		{
			name:    "nothing to detect",
			docs:    map[project.Slot]project.Document{project.SlotPackage: project.NewDocument(map[string]any{})},
			wantErr: true,
		},
		{
			name:    "dependency with no digits",
			docs:    map[project.Slot]project.Document{project.SlotPackage: pkg("latest")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectVersion(project.New("/app", tt.docs, nil))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrVersionUndetectable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
