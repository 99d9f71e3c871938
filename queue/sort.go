package queue

// Sort orders the chain ascending by CompareFold, keeping equal values in
// their original order. Nodes are relinked, never reallocated.
func (q *Queue) Sort() {
	if q.absent() || q.head == nil || q.head.next == nil {
		return
	}

	q.log().Trace("sort", "count", q.count)

	q.head = mergeSort(q.head)

	tail := q.head
	for tail.next != nil {
		tail = tail.next
	}
	q.tail = tail
}

func mergeSort(head *Node) *Node {
	if head == nil || head.next == nil {
		return head
	}

	// fast starts one ahead so slow stops at the end of the left half
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	right := slow.next
	slow.next = nil

	return merge(mergeSort(head), mergeSort(right))
}

func merge(left, right *Node) *Node {
	var head Node
	last := &head

	for left != nil && right != nil {
		if CompareFold(right.value, left.value) < 0 {
			last.next = right
			right = right.next
		} else {
			last.next = left
			left = left.next
		}
		last = last.next
	}

	if left != nil {
		last.next = left
	} else {
		last.next = right
	}
	return head.next
}

// CompareFold compares a and b byte by byte with ASCII letters folded to lower case.
// It returns -1, 0 or 1.
func CompareFold(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i += 1 {
		ca, cb := lower(a[i]), lower(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1

	default:
		return 0
	}
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
