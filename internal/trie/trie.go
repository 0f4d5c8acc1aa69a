// Package trie implements the fixed-alphabet prefix tree shared by the
// autocomplete index. The alphabet is the 26 lowercase ASCII letters
// plus the space character; callers sanitize input before insertion.
package trie

const alphabetSize = 27 // 'a'..'z' plus space

// node is one trie node in the arena. Children hold arena indexes;
// 0 means "no child" (the root lives at index 0 and is never a child).
type node struct {
	children [alphabetSize]int32
	isWord   bool
}

// Trie stores words over the {a-z, space} alphabet and answers
// prefix-enumeration queries. Nodes live in a flat arena addressed by
// integer ID, so traversal never recurses regardless of word length.
// A Trie is not safe for concurrent mutation; after the build phase it
// is read-only and may be shared freely.
type Trie struct {
	nodes []node
	words int
}

// New creates an empty Trie.
func New() *Trie {
	return &Trie{nodes: make([]node, 1)}
}

func charIndex(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	case c == ' ':
		return 26
	}
	return -1
}

func indexChar(i int) byte {
	if i == 26 {
		return ' '
	}
	return 'a' + byte(i)
}

// Insert adds a word in O(len(word)) time. Words containing characters
// outside the alphabet are ignored; callers must sanitize first.
func (t *Trie) Insert(word string) {
	for i := 0; i < len(word); i++ {
		if charIndex(word[i]) < 0 {
			return
		}
	}

	cur := int32(0)
	for i := 0; i < len(word); i++ {
		idx := charIndex(word[i])
		child := t.nodes[cur].children[idx]
		if child == 0 {
			t.nodes = append(t.nodes, node{})
			child = int32(len(t.nodes) - 1)
			t.nodes[cur].children[idx] = child
		}
		cur = child
	}
	if !t.nodes[cur].isWord {
		t.nodes[cur].isWord = true
		t.words++
	}
}

// HasWord reports whether word was inserted as a complete word (not
// merely as a prefix of another word).
func (t *Trie) HasWord(word string) bool {
	cur, ok := t.walk(word)
	return ok && t.nodes[cur].isWord
}

// Len returns the number of distinct words stored.
func (t *Trie) Len() int {
	return t.words
}

// WordsWithPrefix returns every stored word having prefix as a literal
// prefix, in a fixed order: depth-first, children visited a..z then
// space. The empty prefix returns all words. A prefix containing a
// character outside the alphabet, or matching nothing, yields an empty
// list.
func (t *Trie) WordsWithPrefix(prefix string) []string {
	results := make([]string, 0)
	start, ok := t.walk(prefix)
	if !ok {
		return results
	}

	type frame struct {
		idx  int32
		word string
	}
	stack := []frame{{idx: start, word: prefix}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[f.idx]
		if n.isWord {
			results = append(results, f.word)
		}
		// Push in reverse so the 'a' child is expanded first.
		for i := alphabetSize - 1; i >= 0; i-- {
			if child := n.children[i]; child != 0 {
				stack = append(stack, frame{idx: child, word: f.word + string(indexChar(i))})
			}
		}
	}
	return results
}

// walk follows prefix from the root and returns the terminal node.
func (t *Trie) walk(prefix string) (int32, bool) {
	cur := int32(0)
	for i := 0; i < len(prefix); i++ {
		idx := charIndex(prefix[i])
		if idx < 0 {
			return 0, false
		}
		child := t.nodes[cur].children[idx]
		if child == 0 {
			return 0, false
		}
		cur = child
	}
	return cur, true
}
