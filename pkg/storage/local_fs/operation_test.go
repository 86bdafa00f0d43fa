package local_fs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLocalFS_SendFile(t *testing.T) {
	// Setup temporary directory
	tempDir := t.TempDir()

	// Create LocalFS client
	client, err := NewClient(&Config{
		SavePath: tempDir,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	// Prepare data
	filename := "test_file.txt"
	content := "hello world"
	modTime := time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC)
	reader := strings.NewReader(content)

	// Call SendFile
	savedKey, err := client.SendFile(filename, reader, "text/plain", modTime)
	if err != nil {
		t.Fatalf("SendFile failed: %v", err)
	}

	savedPath := filepath.Join(tempDir, savedKey)

	// Verify file existence
	if _, err := os.Stat(savedPath); os.IsNotExist(err) {
		t.Fatalf("File not found at %s", savedPath)
	}

	// Verify content
	savedContent, err := os.ReadFile(savedPath)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(savedContent) != content {
		t.Errorf("Content mismatch: expected %s, got %s", content, string(savedContent))
	}

	// Verify modification time
	fileInfo, err := os.Stat(savedPath)
	if err != nil {
		t.Fatalf("Failed to stat saved file: %v", err)
	}
	if !fileInfo.ModTime().Equal(modTime) {
		// Some filesystems might have different precision, check difference
		diff := fileInfo.ModTime().Sub(modTime)
		if diff < -time.Second || diff > time.Second {
			t.Errorf("ModTime mismatch: expected %v, got %v (diff %v)", modTime, fileInfo.ModTime(), diff)
		}
	}
}

func TestLocalFS_SendContent(t *testing.T) {
	// Setup temporary directory
	tempDir := t.TempDir()

	// Create LocalFS client
	client, err := NewClient(&Config{
		SavePath: tempDir,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	// Prepare data
	// Test with a subdirectory to ensure SendContent creates directories
	filename := "subdir/test_content.txt"
	content := []byte("hello content")
	modTime := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	// Call SendContent
	savedKey, err := client.SendContent(filename, content, modTime)
	if err != nil {
		t.Fatalf("SendContent failed: %v", err)
	}

	savedPath := filepath.Join(tempDir, savedKey)

	// Verify file existence
	if _, err := os.Stat(savedPath); os.IsNotExist(err) {
		t.Fatalf("File not found at %s", savedPath)
	}

	// Verify content
	savedContent, err := os.ReadFile(savedPath)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if !bytes.Equal(savedContent, content) {
		t.Errorf("Content mismatch: expected %s, got %s", content, string(savedContent))
	}
}

func TestLocalFS_GetContent(t *testing.T) {
	tempDir := t.TempDir()

	client, err := NewClient(&Config{
		SavePath: tempDir,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	content := []byte("round trip")
	savedKey, err := client.SendContent("get_test.bin", content, time.Time{})
	if err != nil {
		t.Fatalf("SendContent failed: %v", err)
	}

	got, err := client.GetContent(savedKey)
	if err != nil {
		t.Fatalf("GetContent failed: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("Content mismatch: expected %s, got %s", content, got)
	}

	// Missing key should fail
	if _, err := client.GetContent("no_such_key"); err == nil {
		t.Error("Expected error for missing key, got nil")
	}
}

func TestLocalFS_Delete(t *testing.T) {
	tempDir := t.TempDir()

	client, err := NewClient(&Config{
		SavePath: tempDir,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	savedKey, err := client.SendContent("delete_test.txt", []byte("bye"), time.Time{})
	if err != nil {
		t.Fatalf("SendContent failed: %v", err)
	}

	if err := client.Delete(savedKey); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tempDir, savedKey)); !os.IsNotExist(err) {
		t.Errorf("Expected file to be removed, stat err: %v", err)
	}

	// Deleting a missing key is a no-op
	if err := client.Delete("no_such_key"); err != nil {
		t.Errorf("Delete of missing key should be nil, got %v", err)
	}
}
