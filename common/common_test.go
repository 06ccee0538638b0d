package common

import (
	"os"
	"testing"
)

func TestGetEnv(t *testing.T) {
	os.Setenv("COMMON_TEST_INT", "42")
	os.Setenv("COMMON_TEST_FLOAT", "0.5")
	os.Setenv("COMMON_TEST_BAD", "abc")
	defer func() {
		os.Unsetenv("COMMON_TEST_INT")
		os.Unsetenv("COMMON_TEST_FLOAT")
		os.Unsetenv("COMMON_TEST_BAD")
	}()

	t.Run("Int", func(t *testing.T) {
		if GetEnvInt("COMMON_TEST_INT", 1) != 42 {
			t.Fatal("Env value should be parsed")
		}
		if GetEnvInt("COMMON_TEST_BAD", 1) != 1 {
			t.Fatal("Malformed value should fall back to default")
		}
		if GetEnvInt("COMMON_TEST_MISSING", 7) != 7 {
			t.Fatal("Missing value should fall back to default")
		}
	})

	t.Run("Float", func(t *testing.T) {
		if GetEnvFloat("COMMON_TEST_FLOAT", 1.0) != 0.5 {
			t.Fatal("Env value should be parsed")
		}
		if GetEnvFloat("COMMON_TEST_BAD", 1.5) != 1.5 {
			t.Fatal("Malformed value should fall back to default")
		}
	})
}

func TestAlmostEqual(t *testing.T) {
	if !AlmostEqual(0.1+0.2, 0.3) {
		t.Fatal("Values within tolerance must be equal")
	}
	if AlmostEqual(1.0, 1.001) {
		t.Fatal("Values outside tolerance must differ")
	}
}

func TestGetNewLogger(t *testing.T) {
	logger := GetNewLogger()
	if logger.Info == nil || logger.Warn == nil || logger.Err == nil {
		t.Fatal("All loggers must be initialized")
	}
	if logger.Err.Prefix() != "[ Error ] " {
		t.Fatal("Wrong error logger prefix")
	}
}
