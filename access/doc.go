// Package access provides one closure-based contract for reading and mutating
// a shared value, regardless of which primitive guards it.
//
// Four backings implement the Guard interface:
//
//   - Plain: no synchronization at all. Every access succeeds and is Healthy.
//   - Cell: a borrow-checked cell. Conflicting borrows are a programming
//     error: the Try variants report the conflict, the blocking variants
//     panic on it.
//   - Mutex / RWMutex: real locks. The Try variants fail when the lock is
//     contended, the blocking variants wait.
//
// Accesses come in four combinations (shared vs exclusive, blocking vs
// non-blocking), spelled View, Update, TryView and TryUpdate. The closure
// receives a Poisoning value carrying the guarded data plus a flag telling
// whether a previous exclusive access panicked mid-mutation. Go locks do not
// poison by themselves, so the lock-backed guards emulate it: the flag is set
// before the exclusive critical section runs and cleared only when it
// completes without panicking.
//
// Poisoning is deliberately not an error: a panic during mutation does not
// necessarily invalidate the data, it only flags possible inconsistency.
// Callers decide what to do: ignore it with Unpoison, branch on it, or treat
// it as fatal with AssertHealthy.
package access
