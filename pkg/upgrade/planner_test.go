package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	catalog := []string{"1.0", "1.1", "1.2", "1.3"}

	tests := []struct {
		name      string
		current   string
		requested string
		want      []string
		wantErr   error
	}{
		{
			name:      "full path is reversed",
			current:   "1.0",
			requested: "1.3",
			want:      []string{"1.3", "1.2", "1.1"},
		},
		{
			name:      "single step",
			current:   "1.2",
			requested: "1.3",
			want:      []string{"1.3"},
		},
		{
			name:      "partial path",
			current:   "1.0",
			requested: "1.2",
			want:      []string{"1.2", "1.1"},
		},
		{
			name:      "already up to date",
			current:   "1.2",
			requested: "1.2",
			wantErr:   ErrAlreadyUpToDate,
		},
		{
			name:      "downgrade",
			current:   "1.3",
			requested: "1.1",
			wantErr:   ErrDowngradeRejected,
		},
		{
			name:      "unsupported target",
			current:   "1.0",
			requested: "2.0",
			wantErr:   ErrUnsupportedTarget,
		},
		{
			name:      "unsupported current",
			current:   "0.9",
			requested: "1.3",
			wantErr:   ErrUnsupportedCurrent,
		},
		{
			name:      "target checked before current",
			current:   "0.9",
			requested: "2.0",
			wantErr:   ErrUnsupportedTarget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Plan(catalog, tt.current, tt.requested)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlan_UsesListPositionNotSemver(t *testing.T) {
	// Semver ordering would put 1.2-beta first; list position puts it last.
	catalog := []string{"1.9", "1.10", "1.2-beta"}

	got, err := Plan(catalog, "1.9", "1.2-beta")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.2-beta", "1.10"}, got)
}

func TestPlan_DoesNotAliasCatalog(t *testing.T) {
	catalog := []string{"1.0", "1.1", "1.2"}

	got, err := Plan(catalog, "1.0", "1.2")
	require.NoError(t, err)
	got[0] = "mutated"

	assert.Equal(t, []string{"1.0", "1.1", "1.2"}, catalog)
}

func TestPlanError_Message(t *testing.T) {
	_, err := Plan([]string{"1.4.1", "1.5.0"}, "1.4.1", "9.9.9")
	require.Error(t, err)

	var planErr *PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Equal(t, []string{"1.4.1", "1.5.0"}, planErr.Supported)
	assert.Contains(t, err.Error(), "9.9.9")
	assert.Contains(t, err.Error(), "1.4.1, 1.5.0")
}
