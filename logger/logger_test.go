// SPDX-License-Identifier: MIT

package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/logger"
)

// syncBuffer guards bytes.Buffer for the async dispatcher goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, m := range []logger.Mode{logger.ModeDev, logger.ModeProd, logger.ModeSilence} {
		got, err := logger.ParseMode(" " + m.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := logger.ParseMode("PROD")
	require.NoError(t, err)
	assert.Equal(t, logger.ModeProd, got)

	_, err = logger.ParseMode("loud")
	assert.Error(t, err)
}

func TestVerbose(t *testing.T) {
	t.Parallel()

	assert.Equal(t, logger.ModeSilence, logger.Verbose(0))
	assert.Equal(t, logger.ModeProd, logger.Verbose(1))
	assert.Equal(t, logger.ModeDev, logger.Verbose(3))
}

func TestNew_Modes(t *testing.T) {
	t.Parallel()

	var dev bytes.Buffer
	logger.New(logger.ModeDev, &dev).Debug("built", "name", "linspace")
	assert.Contains(t, dev.String(), "msg=built")
	assert.Contains(t, dev.String(), "name=linspace")

	var prod bytes.Buffer
	l := logger.New(logger.ModeProd, &prod)
	l.Debug("hidden")
	l.Info("shown", "n", 3)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(prod.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.EqualValues(t, 3, rec["n"])

	var silent bytes.Buffer
	logger.New(logger.ModeSilence, &silent).Error("nothing")
	assert.Empty(t, silent.String())
}

func TestAsync_DrainsOnClose(t *testing.T) {
	t.Parallel()

	var out syncBuffer
	l, h := logger.NewAsync(logger.ModeDev, &out, 16)
	l.Info("one")
	l.With("k", "v").Info("two")
	h.Close()
	h.Close()

	assert.Contains(t, out.String(), "msg=one")
	assert.Contains(t, out.String(), "k=v")

	l.Info("late")
	assert.Equal(t, uint64(1), h.Dropped())
	assert.NotContains(t, out.String(), "late")
}

func TestAsync_CloseRaceAccountsEveryRecord(t *testing.T) {
	t.Parallel()

	const writers, each = 8, 200
	var out syncBuffer
	l, h := logger.NewAsync(logger.ModeDev, &out, writers*each)

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				l.Info("rec")
			}
		}()
	}
	h.Close()
	wg.Wait()

	written := strings.Count(out.String(), "msg=rec")
	assert.Equal(t, writers*each, written+int(h.Dropped()))
}
