package auth

import "testing"

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash equals plaintext")
	}

	if !svc.Verify(hash, "correct horse battery staple") {
		t.Error("expected password to verify")
	}
	if svc.Verify(hash, "wrong password") {
		t.Error("expected wrong password to fail")
	}
	if svc.Verify("", "anything") {
		t.Error("expected empty hash to fail verification")
	}
}
