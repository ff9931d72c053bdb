package errors

import (
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"strings"
	"testing"
)

func TestErrorCode_MarshalsByName(t *testing.T) {
	b, err := json.Marshal(map[string]interface{}{"code": ErrorCode_VENDOR_UNREACHABLE})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"code":"VENDOR_UNREACHABLE"}` {
		t.Fatalf("unexpected json %s", b)
	}
	if got := ErrorCode(42).String(); got != "ErrorCode(42)" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestAppError_WrapsCause(t *testing.T) {
	cause := stdErrors.New("dial tcp: connection refused")
	err := ErrVendorUnreachable(cause)

	if err.HTTPCode != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status %d", err.HTTPCode)
	}
	if !stdErrors.Is(err, cause) {
		t.Fatalf("cause should be reachable through Unwrap")
	}
	if !strings.HasPrefix(err.Error(), "[VENDOR_UNREACHABLE]") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestAppError_WithDetailCopies(t *testing.T) {
	base := ErrVendorRejected("Invalid API key", nil)
	withDetail := base.WithDetail("vendor_status", "401")

	if base.Details != nil {
		t.Fatalf("base error must not be modified")
	}
	if withDetail.Details["vendor_status"] != "401" {
		t.Fatalf("missing detail: %+v", withDetail.Details)
	}
}
