package safe_close

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSafeClose_WaitClosed(t *testing.T) {
	sc := NewSafeClose()

	started := make(chan struct{})
	sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()
		close(started)
		<-closeSignal
	})

	<-started
	wantErr := errors.New("boom")
	sc.SendCloseSignal(wantErr)

	// 重复发送不覆盖首个错误
	sc.SendCloseSignal(nil)

	assert.Equal(t, wantErr, sc.WaitClosed())
}

func TestSafeClose_AttachAfterSignal(t *testing.T) {
	sc := NewSafeClose()
	sc.SendCloseSignal(nil)

	finished := make(chan struct{})
	sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()
		<-closeSignal
		close(finished)
	})

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("attached component did not observe close signal")
	}

	assert.NoError(t, sc.WaitClosed())
}
