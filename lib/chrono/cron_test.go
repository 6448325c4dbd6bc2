package chrono

import (
	"errors"
	"testing"
	"time"

	"footygraph/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestStandardCron(t *testing.T) {
	tel := &telemetry.RecordingAPI{}
	cron := NewStandardCron(tel, nil)
	defer cron.Stop()

	require.Error(t, cron.Cron("not a spec", func() {}))

	fired := make(chan struct{}, 1)
	err := cron.Cron("@every 1s", func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(time.Second * 5):
		t.Fatal("cron job never fired")
	}
}

func TestCronLogger(t *testing.T) {
	tel := &telemetry.RecordingAPI{}
	logger := cronLogger{tel: tel}

	logger.Info("schedule", "entry", 1, "dangling")
	logger.Error(errors.New("boom"), "run", "entry", 2)

	debug := tel.Reports("debug")
	require.Len(t, debug, 1)
	require.Equal(t, "cron: schedule", debug[0].ID)
	require.Equal(t, []any{"entry: 1"}, debug[0].Params)

	broken := tel.Reports("broken")
	require.Len(t, broken, 1)
	require.Equal(t, "cron", broken[0].ID)
	require.Len(t, broken[0].Params, 2)
	require.ErrorContains(t, broken[0].Params[0].(error), "run: boom")
}
