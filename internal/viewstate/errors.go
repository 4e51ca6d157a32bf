// ABOUTME: Last-error bookkeeping shared by the view-state objects.
package viewstate

import "github.com/harperreed/arista/internal/apperr"

// lastError records err, promoting plain errors to apperr.Unknown.
func lastError(o *Observable[*apperr.Error], err error) {
	o.Set(apperr.Classify(err))
}
