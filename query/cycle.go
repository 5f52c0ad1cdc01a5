package query

// chainNode is a linked stack of in-flight query keys on the current
// call path, the single-threaded analogue of gapis/database's
// resolveChain parent-link (there used to print a resolve stack trace
// on panic; here walked instead to detect a query reinvoking itself).
type chainNode struct {
	key    Key
	parent *chainNode
}

func (c *chainNode) contains(k Key) bool {
	for cur := c; cur != nil; cur = cur.parent {
		if cur.key == k {
			return true
		}
	}
	return false
}

// CycleError reports that key was invoked while already in progress on
// the current call path (spec §4.D: "cyclic query invocation ... fails
// the outer call with CycleInQuery").
type CycleError struct{ Key Key }

func (e *CycleError) Error() string {
	return "CycleInQuery: " + string(e.Key.Kind) + " " + e.Key.Frag.String()
}
