package trie

import (
	"bytes"
	"compress/zlib"
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/cognicore/markov/pkg/markov/internalerr"
	"github.com/cognicore/markov/pkg/markov/neighbor"
	"github.com/cognicore/markov/pkg/markov/pos"
)

// Snapshot keys, per spec.md §6's Node schema.
const (
	wordKey      = "_W"
	neighborsKey = "_N"
	wordTextKey  = "_T"
	wordPosKey   = "_P"
)

// Save serializes the trie to the compressed snapshot format:
// deflate(utf8(compact_json(trie))), written via the zlib container so
// the on-disk bytes round-trip with any zlib-compatible reader (the
// format spec.md §6 specifies has no header or version byte beyond
// zlib's own).
func (s *Store) Save(path string) error {
	tree := encodeNode(s.root)
	raw, err := json.Marshal(tree)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Load rebuilds a fresh trie from a snapshot file and swaps it in only
// on success — a decompression or structural failure returns
// ErrCorruptSnapshot and leaves the store untouched.
func (s *Store) Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return internalerr.ErrCorruptSnapshot
	}
	defer zr.Close()

	jsonBytes, err := io.ReadAll(zr)
	if err != nil {
		return internalerr.ErrCorruptSnapshot
	}

	var tree map[string]any
	if err := json.Unmarshal(jsonBytes, &tree); err != nil {
		return internalerr.ErrCorruptSnapshot
	}

	root, err := decodeNode(tree)
	if err != nil {
		return internalerr.ErrCorruptSnapshot
	}

	s.root = root
	return nil
}

func encodeNode(n *node) map[string]any {
	out := make(map[string]any, len(n.children)+1)

	chars := make([]rune, 0, len(n.children))
	for c := range n.children {
		chars = append(chars, c)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	for _, c := range chars {
		out[string(c)] = encodeNode(n.children[c])
	}

	if n.payload != nil {
		out[wordKey] = map[string]any{
			wordTextKey: n.payload.text,
			wordPosKey:  int(n.payload.pos),
		}

		neighbors := make(map[string]any, len(n.payload.neighbors))
		for text, nb := range n.payload.neighbors {
			_, posCode, values, dist := nb.ToStored()
			neighbors[text] = []any{
				posCode,
				[]any{values.Count, values.Rating},
				append([]int64(nil), dist...),
			}
		}
		out[neighborsKey] = neighbors
	}

	return out
}

func decodeNode(tree map[string]any) (*node, error) {
	n := newNode()

	for key, value := range tree {
		switch key {
		case wordKey:
			wordObj, ok := value.(map[string]any)
			if !ok {
				return nil, internalerr.ErrCorruptSnapshot
			}
			text, ok := wordObj[wordTextKey].(string)
			if !ok {
				return nil, internalerr.ErrCorruptSnapshot
			}
			posCode, ok := asInt(wordObj[wordPosKey])
			if !ok {
				return nil, internalerr.ErrCorruptSnapshot
			}
			if n.payload == nil {
				n.payload = &payload{neighbors: make(map[string]*neighbor.Neighbor)}
			}
			n.payload.text = text
			n.payload.pos = pos.Pos(posCode)

		case neighborsKey:
			neighborsObj, ok := value.(map[string]any)
			if !ok {
				return nil, internalerr.ErrCorruptSnapshot
			}
			decoded, err := decodeNeighbors(neighborsObj)
			if err != nil {
				return nil, err
			}
			if n.payload == nil {
				n.payload = &payload{}
			}
			n.payload.neighbors = decoded

		default:
			runes := []rune(key)
			if len(runes) != 1 {
				return nil, internalerr.ErrCorruptSnapshot
			}
			childTree, ok := value.(map[string]any)
			if !ok {
				return nil, internalerr.ErrCorruptSnapshot
			}
			child, err := decodeNode(childTree)
			if err != nil {
				return nil, err
			}
			n.children[runes[0]] = child
		}
	}

	return n, nil
}

func decodeNeighbors(obj map[string]any) (map[string]*neighbor.Neighbor, error) {
	out := make(map[string]*neighbor.Neighbor, len(obj))
	for text, raw := range obj {
		arr, ok := raw.([]any)
		if !ok || len(arr) != 3 {
			return nil, internalerr.ErrCorruptSnapshot
		}

		posCode, ok := asInt(arr[0])
		if !ok {
			return nil, internalerr.ErrCorruptSnapshot
		}

		values, ok := arr[1].([]any)
		if !ok || len(values) != 2 {
			return nil, internalerr.ErrCorruptSnapshot
		}
		count, ok := asInt64(values[0])
		if !ok {
			return nil, internalerr.ErrCorruptSnapshot
		}
		rating, ok := asFloat(values[1])
		if !ok {
			return nil, internalerr.ErrCorruptSnapshot
		}

		distRaw, ok := arr[2].([]any)
		if !ok {
			return nil, internalerr.ErrCorruptSnapshot
		}
		dist := make([]int64, len(distRaw))
		for i, dv := range distRaw {
			iv, ok := asInt64(dv)
			if !ok {
				return nil, internalerr.ErrCorruptSnapshot
			}
			dist[i] = iv
		}

		out[text] = neighbor.FromStored(text, posCode, count, rating, dist)
	}
	return out, nil
}

func asInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func asInt64(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

func asFloat(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}
