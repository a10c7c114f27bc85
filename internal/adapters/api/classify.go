package api

import (
	"net/http"

	"github.com/qoocca/parent-pay/internal/domain"
)

// Classify maps a raw transport outcome to the closed error taxonomy. It is
// pure and total: every Result shape yields exactly one AppError, so batch
// aggregation can apply it per completed call without ordering concerns.
func Classify(res Result) *domain.AppError {
	switch res.Kind {
	case ResultHTTPError:
		switch res.StatusCode {
		case http.StatusUnauthorized:
			return domain.ErrUnauthorized()
		case http.StatusForbidden:
			return domain.ErrForbidden()
		default:
			return domain.ErrServer(res.StatusCode)
		}
	case ResultNetworkError:
		return domain.ErrNetwork()
	case ResultDecodeError:
		return domain.ErrParsing()
	case ResultSuccess:
		// Classifying a success is a caller bug, not a transport failure.
		return domain.ErrUnknown(nil)
	default:
		return domain.ErrUnknown(res.Err)
	}
}
