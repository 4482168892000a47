package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "jibfiles.dev/pkg/jibfiles/internal/model"
)

func TestListCmd_UsesProjectFlag(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := newTestRoot(newListCmd())
	cmd.SetArgs([]string{"list", "--project", "./jibfiles.yaml"})

	require.NoError(t, cmd.Execute())
	require.Len(t, fake.summaryArgs, 1)
	assert.Equal(t, m.Path("./jibfiles.yaml"), fake.summaryArgs[0].Descriptor)
}

func TestListCmd_PositionalArgsAreRejected(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := newTestRoot(newListCmd())
	cmd.SetArgs([]string{"list", "extra-arg"})

	require.Error(t, cmd.Execute())
	assert.Empty(t, fake.summaryArgs)
}
