package chook_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nocc-go/nocc/chook"
	"github.com/nocc-go/nocc/tnode"
)

func TestPromoteMovesAutoPromoteChook(t *testing.T) {
	id := chook.Register(chook.Descriptor{Name: "test:promote", AutoPromote: true})

	leafType := tnode.RegisterType(&tnode.TypeDef{Name: "chooktestleaf"})
	leafTag := tnode.RegisterTag("CHOOKTESTLEAF", leafType, 0)

	src := tnode.New(leafTag, tnode.Origin{})
	dst := tnode.New(leafTag, tnode.Origin{})

	chook.Set(src, id, "payload")

	ok := chook.Promote(src, dst, id)
	require.True(t, ok)

	_, stillOnSrc := chook.Get(src, id)
	require.False(t, stillOnSrc)

	v, onDst := chook.Get(dst, id)
	require.True(t, onDst)
	require.Equal(t, "payload", v)
}

func TestPromoteNoopWithoutAutoPromote(t *testing.T) {
	id := chook.Register(chook.Descriptor{Name: "test:nopromote"})

	leafType := tnode.RegisterType(&tnode.TypeDef{Name: "chooktestleaf2"})
	leafTag := tnode.RegisterTag("CHOOKTESTLEAF2", leafType, 0)

	src := tnode.New(leafTag, tnode.Origin{})
	dst := tnode.New(leafTag, tnode.Origin{})
	chook.Set(src, id, 42)

	ok := chook.Promote(src, dst, id)
	require.False(t, ok)
	_, onDst := chook.Get(dst, id)
	require.False(t, onDst)
}
