package locparsec

import "github.com/tliron/commonlog"

// logger is looked up on every use rather than once at package
// initialization, as the program may register its commonlog backend
// after this package is initialized.  Nothing is logged until a
// backend (e.g. commonlog/simple) is registered and configured.
func logger() commonlog.Logger {
	return commonlog.GetLogger("locparsec")
}
