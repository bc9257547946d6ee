package tnode

// Four walks exist, all visiting subnodes in slot order and then
// delegating to the node-type's hook-walker callback so that hooks which
// themselves own subtrees (chiefly *List) can participate without the
// walker knowing their layout (spec §4.1).

// PostwalkFunc is called on a subtree after all of its children (and
// their hooks) have been visited.
type PostwalkFunc func(n *Node, arg any) error

// Postwalk visits every subnode (then hook-owned subtree) of n before
// calling f on n itself.
func Postwalk(n *Node, f PostwalkFunc, arg any) error {
	if n == nil {
		return nil
	}
	for _, c := range n.Subs {
		if c == nil {
			continue
		}
		if err := Postwalk(c, f, arg); err != nil {
			return err
		}
	}
	if n.Tag.Type.HookPostWalkTree != nil {
		for _, h := range n.Hooks {
			if h == nil {
				continue
			}
			if err := n.Tag.Type.HookPostWalkTree(h, func(c *Node) error { return Postwalk(c, f, arg) }); err != nil {
				return err
			}
		}
	}
	return f(n, arg)
}

// PrewalkFunc is called on a node before its children; a false return
// prunes the subtree (children are not visited).
type PrewalkFunc func(n *Node, arg any) (bool, error)

// Prewalk calls f on n first; if f returns false the subtree is pruned.
func Prewalk(n *Node, f PrewalkFunc, arg any) error {
	if n == nil {
		return nil
	}
	cont, err := f(n, arg)
	if err != nil || !cont {
		return err
	}
	for _, c := range n.Subs {
		if c == nil {
			continue
		}
		if err := Prewalk(c, f, arg); err != nil {
			return err
		}
	}
	if n.Tag.Type.HookPreWalkTree != nil {
		for _, h := range n.Hooks {
			if h == nil {
				continue
			}
			if err := n.Tag.Type.HookPreWalkTree(h, func(c *Node) (bool, error) { return true, Prewalk(c, f, arg) }); err != nil {
				return err
			}
		}
	}
	return nil
}

// ModPrewalkFunc receives the address of the node pointer and may replace
// it; the (possibly new) node's children are then walked.
type ModPrewalkFunc func(np **Node, arg any) (bool, error)

// ModPrewalk is like Prewalk but f may mutate *np in place.
func ModPrewalk(np **Node, f ModPrewalkFunc, arg any) error {
	if np == nil || *np == nil {
		return nil
	}
	cont, err := f(np, arg)
	if err != nil || !cont {
		return err
	}
	n := *np
	for i, c := range n.Subs {
		if c == nil {
			continue
		}
		cp := &n.Subs[i]
		if err := ModPrewalk(cp, f, arg); err != nil {
			return err
		}
	}
	if n.Tag.Type.HookModPreWalkTree != nil {
		for _, h := range n.Hooks {
			if h == nil {
				continue
			}
			if err := n.Tag.Type.HookModPreWalkTree(h, func(cp **Node) (bool, error) { return true, ModPrewalk(cp, f, arg) }); err != nil {
				return err
			}
		}
	}
	return nil
}

// ModPrePostFunc is the pre-order half of ModPrePostWalk. A positive
// return descends into children; zero skips descent but still runs post;
// negative skips descent and suppresses post entirely.
type ModPrePostFunc func(np **Node, arg any) (int, error)

// ModPostFunc is the post-order half of ModPrePostWalk.
type ModPostFunc func(np **Node, arg any) error

// ModPrePostWalk runs pre on a node, conditionally descends into
// children/hooks, then conditionally runs post.
func ModPrePostWalk(np **Node, pre ModPrePostFunc, post ModPostFunc, arg any) error {
	if np == nil || *np == nil {
		return nil
	}
	decision, err := pre(np, arg)
	if err != nil {
		return err
	}
	if decision > 0 {
		n := *np
		for i, c := range n.Subs {
			if c == nil {
				continue
			}
			cp := &n.Subs[i]
			if err := ModPrePostWalk(cp, pre, post, arg); err != nil {
				return err
			}
		}
		if n.Tag.Type.HookModPrePostWalkTree != nil {
			for _, h := range n.Hooks {
				if h == nil {
					continue
				}
				hpre := func(cp **Node) (int, error) { return 1, ModPrePostWalk(cp, pre, post, arg) }
				hpost := func(cp **Node) error { return nil }
				if err := n.Tag.Type.HookModPrePostWalkTree(h, hpre, hpost); err != nil {
					return err
				}
			}
		}
	}
	if decision >= 0 {
		return post(np, arg)
	}
	return nil
}
