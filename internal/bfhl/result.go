package bfhl

// Result is the outcome of one dispatch: either data or a failure message.
type Result struct {
	ok   bool
	data any
	err  error
}

func Success(data any) Result {
	return Result{ok: true, data: data}
}

func Failure(err error) Result {
	return Result{err: err}
}

func (r Result) OK() bool { return r.ok }

func (r Result) Data() any { return r.data }

func (r Result) Err() error { return r.err }

// Message is empty for successful results.
func (r Result) Message() string {
	if r.ok || r.err == nil {
		return ""
	}
	return r.err.Error()
}
