package polylla

import (
	"fmt"
	"time"
)

// LogCategory classifies build log entries.
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota // a progress log entry
	LogWarning                         // a warning log entry
	LogError                           // an error log entry
)

// TimerLabel identifies a performance timer.
type TimerLabel int

const (
	TimerKernel TimerLabel = iota // accumulated kernel computation time
	TimerStats                    // accumulated statistics time
	TimerTotal                    // whole run
	maxTimers
)

const maxMessages = 1000

// BuildContext provides optional logging and performance tracking for
// mesh processing runs. The zero value is ready to use. On a nil
// receiver the logging and timer methods do nothing, LogCount and
// AccumulatedTime return zero, DumpLog prints only its header, and
// LogText panics.
type BuildContext struct {
	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration

	messages []string
}

func (ctx *BuildContext) log(category LogCategory, msg string) {
	if ctx == nil || len(ctx.messages) >= maxMessages {
		return
	}
	switch category {
	case LogProgress:
		ctx.messages = append(ctx.messages, "PROG "+msg)
	case LogWarning:
		ctx.messages = append(ctx.messages, "WARN "+msg)
	case LogError:
		ctx.messages = append(ctx.messages, "ERR "+msg)
	}
}

// Progressf logs a progress message.
func (ctx *BuildContext) Progressf(format string, args ...interface{}) {
	ctx.log(LogProgress, fmt.Sprintf(format, args...))
}

// Warningf logs a warning message.
func (ctx *BuildContext) Warningf(format string, args ...interface{}) {
	ctx.log(LogWarning, fmt.Sprintf(format, args...))
}

// Errorf logs an error message.
func (ctx *BuildContext) Errorf(format string, args ...interface{}) {
	ctx.log(LogError, fmt.Sprintf(format, args...))
}

// ResetLog clears all log entries.
func (ctx *BuildContext) ResetLog() {
	if ctx != nil {
		ctx.messages = ctx.messages[:0]
	}
}

// LogCount returns the number of stored log entries.
func (ctx *BuildContext) LogCount() int {
	if ctx == nil {
		return 0
	}
	return len(ctx.messages)
}

// LogText returns the i-th log entry.
func (ctx *BuildContext) LogText(i int) string {
	return ctx.messages[i]
}

// DumpLog prints a header followed by every stored log entry to
// stdout.
func (ctx *BuildContext) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	if ctx == nil {
		return
	}
	for _, msg := range ctx.messages {
		fmt.Println(msg)
	}
}

// StartTimer starts the given performance timer.
func (ctx *BuildContext) StartTimer(label TimerLabel) {
	if ctx != nil {
		ctx.startTime[label] = time.Now()
	}
}

// StopTimer stops the given performance timer and accumulates the
// elapsed time.
func (ctx *BuildContext) StopTimer(label TimerLabel) {
	if ctx != nil {
		ctx.accTime[label] += time.Since(ctx.startTime[label])
	}
}

// AccumulatedTime returns the total accumulated time of the given
// performance timer.
func (ctx *BuildContext) AccumulatedTime(label TimerLabel) time.Duration {
	if ctx == nil {
		return 0
	}
	return ctx.accTime[label]
}
