package logger

import (
	"strings"
	"testing"
)

func TestGetLogFilePath_AccessLogCoFileRieng(t *testing.T) {
	path := getLogFilePath("access")
	if !strings.HasSuffix(path, "access.log") {
		t.Errorf("access logger phải ghi ra file access.log, có: %q", path)
	}
	appPath := getLogFilePath("app")
	if path == appPath {
		t.Error("access log không được dùng chung file với log ứng dụng")
	}
}

func TestGetAccessLogger_KhacAppLogger(t *testing.T) {
	if GetAccessLogger() == GetAppLogger() {
		t.Error("access logger và app logger phải là hai instance riêng")
	}
}
