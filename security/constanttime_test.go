package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecureEqual(t *testing.T) {
	assert.True(t, SecureEqual([]byte("digest"), []byte("digest")))
	assert.False(t, SecureEqual([]byte("digest"), []byte("digesT")))
	assert.False(t, SecureEqual([]byte("digest"), []byte("diges")))
	assert.True(t, SecureEqual(nil, []byte{}))
}

func TestSecureEqualString(t *testing.T) {
	assert.True(t, SecureEqualString("token", "token"))
	assert.False(t, SecureEqualString("token", "token2"))
}

func TestSecureEqualArrays(t *testing.T) {
	var a, b [32]byte
	a[31] = 1
	assert.False(t, SecureEqual32(a, b))
	b[31] = 1
	assert.True(t, SecureEqual32(a, b))

	var c, d [64]byte
	assert.True(t, SecureEqual64(c, d))
	d[0] = 0xff
	assert.False(t, SecureEqual64(c, d))
}
