package scan

// TagPair is one parsed `key=value` (or bare `key`) entry from a tags
// block. Value is empty both when the tag is bare (`key;`) and when it
// was written as explicitly empty (`key=;`); the two are not
// distinguished, matching observed Twitch behavior.
type TagPair struct {
	Key   Range
	Value Range
}

// TokenizeTags walks the tags-block bytes in data[start:end) (the region
// between the leading '@' and the terminating space, exclusive of both)
// and emits one TagPair per `key=value` or bare `key` segment, in
// insertion order. Ranges are absolute offsets into data so callers never
// need to re-base them.
func TokenizeTags(data []byte, start, end int) []TagPair {
	if start >= end {
		return nil
	}
	pairs := GetTagPairs()
	pos := start
	for pos < end {
		keyStart := pos
		rel := FindAny2(data[pos:end], '=', ';')
		next := pos + rel
		switch {
		case next >= end:
			pairs = append(pairs, TagPair{
				Key:   Range{uint32(keyStart), uint32(end)},
				Value: Range{uint32(end), uint32(end)},
			})
			pos = end
		case data[next] == '=':
			keyEnd := next
			valStart := next + 1
			relv := FindByte(data[valStart:end], ';')
			valEnd := valStart + relv
			pairs = append(pairs, TagPair{
				Key:   Range{uint32(keyStart), uint32(keyEnd)},
				Value: Range{uint32(valStart), uint32(valEnd)},
			})
			pos = valEnd
			if pos < end && data[pos] == ';' {
				pos++
			}
		default: // ';'
			pairs = append(pairs, TagPair{
				Key:   Range{uint32(keyStart), uint32(next)},
				Value: Range{uint32(next), uint32(next)},
			})
			pos = next + 1
		}
	}
	return pairs
}
