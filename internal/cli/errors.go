package cli

type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func errUsage(msg string) error { return usageError{msg: msg} }
