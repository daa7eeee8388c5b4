package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID_ServerKnows(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		want bool
	}{
		{name: "server id", id: ServerID("123"), want: true},
		{name: "root", id: Root, want: true},
		{name: "client id", id: NewClientID(), want: false},
		{name: "null id", id: ID(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.ServerKnows())
		})
	}
}

func TestID_Predicates(t *testing.T) {
	assert.True(t, Root.IsRoot())
	assert.False(t, ServerID("1").IsRoot())

	assert.True(t, ID("").IsNull())
	assert.False(t, Root.IsNull())
}

func TestNewClientID_Unique(t *testing.T) {
	assert.NotEqual(t, NewClientID(), NewClientID())
}
