package linkptr

// noCopy triggers the copylocks vet check when a struct carrying it is
// copied by value. A linked node that is moved by a struct copy leaves its
// neighbors pointing at the old location.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Link is an element of an intrusive circular doubly-linked list. The
// members of one circle are exactly the handles sharing one resource. A
// Link holds no ownership itself; left and right are identity references
// into the same circle.
//
// The zero value is a valid single-element circle; it is normalized to an
// explicit self-loop on first use.
type Link struct {
	noCopy noCopy

	left  *Link
	right *Link
}

func (l *Link) lazyInit() {
	if l.left == nil {
		l.left = l
		l.right = l
	}
}

// Unique reports whether l is the only member of its circle.
func (l *Link) Unique() bool {
	l.lazyInit()
	return l.left == l && l.right == l
}

// InsertAfter splices l into target's circle immediately after target.
// l must be unique; only brand-new nodes join an existing circle.
func (l *Link) InsertAfter(target *Link) {
	if !l.Unique() {
		panic("linkptr: InsertAfter on a linked node")
	}
	target.lazyInit()
	l.right = target.right
	l.right.left = l
	l.left = target
	target.right = l
}

// Erase removes l from its circle and restores the self-loop. Erasing an
// already-unique node is a no-op topologically; the self-loop is kept.
func (l *Link) Erase() {
	l.lazyInit()
	l.right.left = l.left
	l.left.right = l.right
	l.left = l
	l.right = l
}

// Swap exchanges the circle memberships of l and other in place. Neither
// node's identity moves; only which circle each belongs to changes, and the
// other members of both circles are undisturbed.
//
// The two nodes must belong to different circles (or be unique); swapping
// two members of one circle is not supported. The handle layer never
// produces that case because it skips the swap when both targets are equal.
func (l *Link) Swap(other *Link) {
	l.lazyInit()
	other.lazyInit()
	if l == other {
		return
	}

	lu, ou := l.Unique(), other.Unique()
	switch {
	case lu && ou:
		// a unique node's position carries no information
	case lu:
		// Exchanging pointer pairs cannot express this case: other's old
		// neighbors must end up adjacent to l, while other's own links
		// collapse to a self-loop.
		l.left = other.left
		l.right = other.right
		l.left.right = l
		l.right.left = l
		other.left = other
		other.right = other
	case ou:
		other.left = l.left
		other.right = l.right
		other.left.right = other
		other.right.left = other
		l.left = l
		l.right = l
	default:
		l.left, other.left = other.left, l.left
		l.right, other.right = other.right, l.right
		l.left.right = l
		l.right.left = l
		other.left.right = other
		other.right.left = other
	}
}
