package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ds/control"
	"github.com/momentics/hioload-ds/internal/logger"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { logger.Set(nil) })
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestScenarioCommand(t *testing.T) {
	out, err := execute(t, "scenario")
	require.NoError(t, err)
	assert.Contains(t, out, "push_front(4) push_front(5) forward=[5 4]")
	assert.Contains(t, out, "insert(1, 3) -> [1 3 2]")
	assert.Contains(t, out, "remove(1) -> 3 [1 2]")
	assert.Contains(t, out, "pop() -> 2 [1]")
	assert.Contains(t, out, "push_back(2) push_front(1) forward=[1 2]")
	assert.Contains(t, out, "pop_back() -> 2 empty=true")
}

func TestScenarioSingle(t *testing.T) {
	out, err := execute(t, "scenario", "B")
	require.NoError(t, err)
	assert.Contains(t, out, "scenario b")
	assert.NotContains(t, out, "scenario a")

	_, err = execute(t, "scenario", "z")
	require.ErrorContains(t, err, "unknown scenario")
}

func TestRunEveryContainer(t *testing.T) {
	for _, kind := range []string{
		control.KindSeqList, control.KindRingDeque, control.KindLinkedList,
		control.KindQueue, control.KindStack,
	} {
		t.Run(kind, func(t *testing.T) {
			out, err := execute(t, "run", "--container", kind, "--capacity", "16",
				"--ops", "5000", "--chunk-size", "4")
			require.NoError(t, err)
			assert.Contains(t, out, "container: "+kind)
			assert.Contains(t, out, "ops.push")
			assert.Contains(t, out, "(ok)")
		})
	}
}

func TestRunFromConfigWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.yaml")
	require.NoError(t, os.WriteFile(path,
		[]byte("container: stack\ncapacity: 8\nops: 100\nbackend: mmap\n"), 0o644))

	out, err := execute(t, "run", "--config", path, "--ops", "200")
	require.NoError(t, err)
	assert.Contains(t, out, "container: stack  backend: mmap  ops: 200")
}

func TestRunRejectsInvalidFlags(t *testing.T) {
	_, err := execute(t, "run", "--container", "tree")
	require.ErrorContains(t, err, "unknown container")

	_, err = execute(t, "--log-level", "loud", "scenario")
	require.ErrorContains(t, err, "invalid log level")
}

func TestRunWorkloadCountsOperations(t *testing.T) {
	cfg := control.DefaultConfig()
	cfg.Container = control.KindRingDeque
	cfg.Capacity = 2
	cfg.Ops = 1000
	cfg.PushRatio = 1
	mr := control.NewMetricsRegistry()
	dp := control.NewDebugProbes()

	st, err := runWorkload(context.Background(), cfg, mr, dp)
	require.NoError(t, err)
	require.False(t, st.Leaked())

	snap := mr.GetSnapshot()
	require.Equal(t, int64(2), snap["ops.push"])
	require.Equal(t, int64(998), snap["ops.push_rejected"])
	require.Equal(t, int64(0), snap["ops.pop"])
	require.Equal(t, int64(2), snap["container.final_len"])
	require.Equal(t, int64(1), snap["alloc.total_alloc"])
}

func TestRunWorkloadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := control.DefaultConfig()
	st, err := runWorkload(ctx, cfg, control.NewMetricsRegistry(), control.NewDebugProbes())
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, st.Leaked())
}
