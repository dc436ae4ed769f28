package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/", safeNext(""))
	assert.Equal(t, "/", safeNext("https://evil.example"))
	assert.Equal(t, "/", safeNext("//evil.example"))
	assert.Equal(t, "/notes/my-note", safeNext("/notes/my-note"))
}

func TestLoginTarget(t *testing.T) {
	assert.Equal(t, "/login", loginTarget("/"))
	assert.Equal(t, "/login?next=%2Fnews%2F7", loginTarget("/news/7"))
}
