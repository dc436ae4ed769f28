package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_OwnerlessReadAllowsEveryone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Allow, Evaluate(Anonymous, NoOwner, OpRead))
	assert.Equal(t, Allow, Evaluate(Actor{UserID: 7, Username: "reader"}, NoOwner, OpRead))
}

func TestEvaluate_CreateRequiresAuthentication(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DenyAsAuthRequired, Evaluate(Anonymous, NoOwner, OpCreate))
	assert.Equal(t, Allow, Evaluate(Actor{UserID: 3}, NoOwner, OpCreate))
}

func TestEvaluate_OwnListRequiresAuthentication(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DenyAsAuthRequired, Evaluate(Anonymous, NoOwner, OpReadOwnList))
	assert.Equal(t, Allow, Evaluate(Actor{UserID: 3}, NoOwner, OpReadOwnList))
}

func TestEvaluate_EditDelete(t *testing.T) {
	t.Parallel()

	owner := Actor{UserID: 1, Username: "owner"}
	other := Actor{UserID: 2, Username: "other"}

	for _, op := range []Operation{OpEdit, OpDelete} {
		assert.Equal(t, DenyAsAuthRequired, Evaluate(Anonymous, owner.UserID, op))
		assert.Equal(t, Allow, Evaluate(owner, owner.UserID, op))
		// Non-owners must see "not found", never "forbidden".
		assert.Equal(t, DenyAsNotFound, Evaluate(other, owner.UserID, op))
	}
}

func TestEvaluate_OwnedReadHiddenFromNonOwners(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Allow, Evaluate(Actor{UserID: 1}, 1, OpRead))
	assert.Equal(t, DenyAsNotFound, Evaluate(Actor{UserID: 2}, 1, OpRead))
	assert.Equal(t, DenyAsAuthRequired, Evaluate(Anonymous, 1, OpRead))
}
