package guppy

import (
	"github.com/nocc-go/nocc/constant"
	"github.com/nocc-go/nocc/tnode"
)

// litTagForKind maps a folded constant.Value's kind back onto the
// literal tag it should be re-wrapped in, so constprop's output is
// still a legitimate literal node typecheck/codegen can dispatch on,
// not a bare tnode.ConstNodeType with an ambiguous tag.
func litTagForKind(k constant.Kind) *tnode.TagDef {
	switch k {
	case constant.Bool:
		return LitBoolTag
	case constant.Double:
		return LitRealTag
	default:
		return LitIntTag
	}
}

func asConstValue(n *tnode.Node) (constant.Value, bool) {
	if n == nil {
		return constant.Value{}, false
	}
	switch n.Tag {
	case LitBoolTag, LitIntTag, LitRealTag, LitStringTag:
		v, ok := tnode.ConstValue(n).(constant.Value)
		return v, ok
	default:
		return constant.Value{}, false
	}
}

// ConstProp folds constant binary/unary expressions bottom-up, replacing
// them with literal nodes in place. It is idempotent (spec §8 property
// 5): a tree with no foldable binop/unop left is returned unchanged by a
// second pass, since every replacement is itself a literal node that
// ConstProp does not try to re-fold.
func ConstProp(root *tnode.Node) *tnode.Node {
	_ = tnode.ModPrePostWalk(&root, func(np **tnode.Node, arg any) (int, error) {
		return 1, nil
	}, func(np **tnode.Node, arg any) error {
		foldInPlace(np)
		return nil
	}, nil)
	return root
}

func foldInPlace(np **tnode.Node) {
	n := *np
	if n == nil {
		return
	}
	if sym, ok := BinOpSymbol(n.Tag); ok {
		lv, lok := asConstValue(n.Sub(0))
		rv, rok := asConstValue(n.Sub(1))
		if lok && rok {
			if folded, ok := constant.BinaryOp(sym, lv, rv); ok {
				*np = NewLit(litTagForKind(folded.Kind), n.Origin, folded)
			}
		}
		return
	}
	if sym, ok := UnOpSymbol(n.Tag); ok {
		if v, ok := asConstValue(n.Sub(0)); ok {
			if folded, ok := constant.UnaryOp(sym, v); ok {
				*np = NewLit(litTagForKind(folded.Kind), n.Origin, folded)
			}
		}
	}
}
