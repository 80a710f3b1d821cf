// Package histstack provides LIFO stacks that remember what was popped from them.
//
// A history stack holds two regions. The stack region behaves like an ordinary
// stack: Push adds to the top, Pop removes from the top. Every element removed
// by Pop lands at the head of the history region, where it can be inspected
// with PeekHistory, restored with Unpop, or discarded with PopHistory.
//
// # Implementations
//
// Two implementations satisfy the Stack contract and differ only in what Push
// does to the history region:
//
//   - Edit keeps the regions in two separate slices. Push clears the history
//     region, which is what an edit or navigation history wants: once a new
//     forward step is taken the undone steps can no longer be redone.
//   - Log keeps both regions in one slice split by a boundary index. Pop and
//     Unpop only move the boundary. Push never touches history, so the history
//     region is a record of everything ever popped until it is cleared.
//
// # Usage
//
//	s := histstack.NewEdit[int]()
//	s.Push(1)
//	s.Push(2)
//	v, _ := s.Pop()   // 2, now at the head of history
//	v, _ = s.Unpop()  // 2 again, back on top
//
// Emptiness is never an error: Pop, Peek and friends return the zero value and
// false. Queue adapts a Stack to the usual queue vocabulary; operations that
// would remove from the middle report ErrUnsupported.
//
// None of the types in this package are safe for concurrent use.
package histstack
