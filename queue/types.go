package queue

// Interface is the operation set shared by *Queue and its Sync wrapper.
type Interface interface {
	InsertHead(value string) bool
	InsertTail(value string) bool
	RemoveHead(buf []byte) bool
	Pop() (string, bool)
	Size() int
	Reverse()
	Sort()
}

type Error string

func (err Error) Error() string {
	return string(err)
}

const ERROR_ALLOCATION_FAILURE = Error("allocation failure")
const ERROR_INVALID_OPERATION = Error("invalid operation")
