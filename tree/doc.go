// SPDX-License-Identifier: MIT

// Package tree produces frame sequences for binary search trees and an
// array-backed max-heap.
//
// BST (State):
//
//   - Insert and Search descend from the root, one frame per node visited.
//     Inserting an existing value ends with OutcomeDuplicate; a search miss
//     ends with OutcomeNotFound. Neither mutates the tree.
//   - InOrder, PreOrder and PostOrder recurse; LevelOrder drains an explicit
//     FIFO queue exposed in the "queue" scalar. An empty tree yields a
//     two-frame OutcomeEmpty run.
//
// The tree is an id-addressed arena: each Node names its Left and Right
// children by id (Nil when absent), so frames can highlight nodes by id.
//
// Heap (HeapState):
//
//   - Parent of i is (i-1)/2; children are 2i+1 and 2i+2.
//   - HeapInsert appends and sifts up (OutcomeOverflow at capacity).
//   - ExtractMax moves the last element to the root and sifts down
//     (OutcomeUnderflow when empty); the removed value is the "max" scalar.
package tree
