package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/scribe/internal/domain"
	scribeerrors "github.com/mrz1836/scribe/internal/errors"
)

func boolPtr(b bool) *bool { return &b }

func TestCommitRequestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()
		req := &domain.CommitRequest{Intent: "quick commit"}
		require.NoError(t, req.Validate())
	})

	t.Run("missing intent is rejected", func(t *testing.T) {
		t.Parallel()
		req := &domain.CommitRequest{}
		err := req.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, scribeerrors.ErrInvalidRequest)
	})

	t.Run("whitespace intent is rejected", func(t *testing.T) {
		t.Parallel()
		req := &domain.CommitRequest{Intent: "   \n\t"}
		assert.ErrorIs(t, req.Validate(), scribeerrors.ErrInvalidRequest)
	})

	t.Run("nil request is rejected", func(t *testing.T) {
		t.Parallel()
		var req *domain.CommitRequest
		assert.ErrorIs(t, req.Validate(), scribeerrors.ErrInvalidRequest)
	})
}

func TestCommitRequestFlagDefaults(t *testing.T) {
	t.Parallel()

	req := &domain.CommitRequest{Intent: "x"}
	assert.True(t, req.WantAutoCommit(), "auto_commit defaults to true")
	assert.True(t, req.WantAutoStage(), "auto_stage defaults to true")

	req.AutoCommit = boolPtr(false)
	req.AutoStage = boolPtr(false)
	assert.False(t, req.WantAutoCommit())
	assert.False(t, req.WantAutoStage())
}

func TestApplyRequestValidate(t *testing.T) {
	t.Parallel()

	req := &domain.ApplyRequest{Message: "feat: add x"}
	require.NoError(t, req.Validate())
	assert.True(t, req.WantAutoCommit())

	empty := &domain.ApplyRequest{}
	assert.ErrorIs(t, empty.Validate(), scribeerrors.ErrInvalidRequest)
}

func TestStyleEnumeration(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.IsValidStyle(domain.StyleDefault))
	assert.True(t, domain.IsValidStyle(domain.StyleKernel))
	assert.False(t, domain.IsValidStyle(domain.Style("emoji")))
	assert.Len(t, domain.ValidStyles(), 4)
}

func TestCommitRequestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	raw := `{"intent":"quick commit","style":"minimal","auto_commit":false}`
	var req domain.CommitRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))

	assert.Equal(t, "quick commit", req.Intent)
	assert.Equal(t, domain.StyleMinimal, req.Style)
	assert.False(t, req.WantAutoCommit())
	assert.True(t, req.WantAutoStage(), "absent auto_stage stays defaulted")
}

func TestCommitResultOmitsEmptyOptionalFields(t *testing.T) {
	t.Parallel()

	res := &domain.CommitResult{Success: true, Message: "feat: add x"}
	data, err := json.Marshal(res)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "commit_sha")
	assert.NotContains(t, string(data), "violations")
	assert.NotContains(t, string(data), "needs_confirmation")
	assert.Contains(t, string(data), `"success":true`)
}
