package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jibfiles.dev/pkg/jibfiles/internal/domain"
	m "jibfiles.dev/pkg/jibfiles/internal/model"
)

type fakeWorkflow struct {
	filesArgs   []domain.FilesArgs
	summaryArgs []domain.SummaryArgs
	err         error
}

func (f *fakeWorkflow) Files(_ context.Context, args domain.FilesArgs) error {
	f.filesArgs = append(f.filesArgs, args)
	return f.err
}

func (f *fakeWorkflow) Summary(_ context.Context, args domain.SummaryArgs) error {
	f.summaryArgs = append(f.summaryArgs, args)
	return f.err
}

// swapWorkflow installs a fake workflow for the duration of a test.
func swapWorkflow(t *testing.T, fake domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = fake
	t.Cleanup(func() { workflow = original })
}

func newTestRoot(children ...*cobra.Command) *cobra.Command {
	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	for _, child := range children {
		cmd.AddCommand(child)
	}

	return cmd
}

func TestFilesCmd_DefaultDescriptor(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := newTestRoot(newFilesCmd())
	cmd.SetArgs([]string{"files"})

	require.NoError(t, cmd.Execute())
	require.Len(t, fake.filesArgs, 1)
	assert.Equal(t, m.Path(defaultProjectFile), fake.filesArgs[0].Descriptor)
	assert.Empty(t, fake.filesArgs[0].Module)
	assert.NotNil(t, fake.filesArgs[0].Out)
}

func TestFilesCmd_ProjectAndModuleFlags(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := newTestRoot(newFilesCmd())
	cmd.SetArgs([]string{"files", "--project", "./multi/jibfiles.yaml", "--module", "complex-service"})

	require.NoError(t, cmd.Execute())
	require.Len(t, fake.filesArgs, 1)
	assert.Equal(t, m.Path("./multi/jibfiles.yaml"), fake.filesArgs[0].Descriptor)
	assert.Equal(t, "complex-service", fake.filesArgs[0].Module)
}

func TestFilesCmd_PositionalArgsAreRejected(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	cmd := newTestRoot(newFilesCmd())
	cmd.SetArgs([]string{"files", "some-module"})

	require.Error(t, cmd.Execute())
	assert.Empty(t, fake.filesArgs)
}
