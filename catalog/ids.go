// SPDX-License-Identifier: MIT
//
// File: ids.go
// Role: stable algorithm identifiers and topics.

package catalog

// ID names one supported algorithm. IDs are stable and appear in URLs.
type ID string

// Sorting.
const (
	BubbleSort    ID = "bubble_sort"
	SelectionSort ID = "selection_sort"
	InsertionSort ID = "insertion_sort"
	MergeSort     ID = "merge_sort"
	QuickSort     ID = "quick_sort"
)

// Searching.
const (
	LinearSearch        ID = "linear_search"
	BinarySearch        ID = "binary_search"
	JumpSearch          ID = "jump_search"
	InterpolationSearch ID = "interpolation_search"
	ExponentialSearch   ID = "exponential_search"
	FibonacciSearch     ID = "fibonacci_search"
	TernarySearch       ID = "ternary_search"
)

// Array operations.
const (
	ArrayInsert  ID = "array_insert"
	ArrayDelete  ID = "array_delete"
	ArrayReverse ID = "array_reverse"
	ArrayRotate  ID = "array_rotate"
)

// Stacks and queues.
const (
	StackPush    ID = "stack_push"
	StackPop     ID = "stack_pop"
	StackPeek    ID = "stack_peek"
	QueueEnqueue ID = "queue_enqueue"
	QueueDequeue ID = "queue_dequeue"
	QueueFront   ID = "queue_front"
)

// Linked lists.
const (
	ListInsertHead  ID = "list_insert_head"
	ListInsertTail  ID = "list_insert_tail"
	ListInsertAt    ID = "list_insert_at"
	ListDelete      ID = "list_delete"
	ListDeleteValue ID = "list_delete_value"
	ListReverse     ID = "list_reverse"
)

// Trees and heaps.
const (
	BSTInsert      ID = "bst_insert"
	BSTSearch      ID = "bst_search"
	TreeInOrder    ID = "tree_inorder"
	TreePreOrder   ID = "tree_preorder"
	TreePostOrder  ID = "tree_postorder"
	TreeLevelOrder ID = "tree_level_order"
	HeapInsert     ID = "heap_insert"
	HeapExtractMax ID = "heap_extract_max"
)

// Graphs and hashing.
const (
	GraphBFS   ID = "graph_bfs"
	GraphDFS   ID = "graph_dfs"
	HashInsert ID = "hash_insert"
	HashSearch ID = "hash_search"
)

// Topic groups entries the way they are presented.
type Topic string

const (
	TopicArrays      Topic = "arrays"
	TopicLinkedLists Topic = "linked_lists"
	TopicStacks      Topic = "stacks"
	TopicQueues      Topic = "queues"
	TopicTrees       Topic = "trees"
	TopicGraphs      Topic = "graphs"
	TopicSorting     Topic = "sorting"
	TopicSearching   Topic = "searching"
	TopicHashing     Topic = "hashing"
)
