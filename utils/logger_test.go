package utils

import (
	"bytes"
	"strings"
	"testing"
)

// ErrorLogger berjalan di level Error: diagnostik harus lewat Errorf
// supaya tidak tertelan filter level (Printf milik logrus mencatat di
// level Info).
func TestErrorLoggerLevel(t *testing.T) {
	InitLogger()

	var buf bytes.Buffer
	ErrorLogger.SetOutput(&buf)

	ErrorLogger.Errorf("order RB-XYZ created but cart for user %d not cleared", 7)
	if !strings.Contains(buf.String(), "not cleared") {
		t.Fatal("Errorf output must pass the Error level filter")
	}

	buf.Reset()
	ErrorLogger.Printf("dropped at info level")
	if buf.Len() != 0 {
		t.Errorf("Printf logs at Info and must be filtered out, got %q", buf.String())
	}
}

func TestInfoLoggerLevel(t *testing.T) {
	InitLogger()

	var buf bytes.Buffer
	InfoLogger.SetOutput(&buf)

	InfoLogger.Printf("seed completed")
	if !strings.Contains(buf.String(), "seed completed") {
		t.Error("InfoLogger.Printf must be visible at Info level")
	}
}
