package dynlist

// This file implements the append/prepend/insert family of §4.H.
// Growth itself is delegated to Go's slice append, which already
// satisfies "if n == capacity, grow and continue" — there is no
// separate capacity field to manage by hand the way
// original_source/c/src/dynio.c's dl_addVal did.

// AppendLong appends a LONG value to Longs. Like the other appenders
// it does not check Datatype; N() counts only the slice that matches
// Datatype.
func (l *List) AppendLong(v int32) { l.Longs = append(l.Longs, v) }

// AppendShort appends a SHORT value.
func (l *List) AppendShort(v int16) { l.Shorts = append(l.Shorts, v) }

// AppendFloat appends a FLOAT value.
func (l *List) AppendFloat(v float32) { l.Floats = append(l.Floats, v) }

// AppendChar appends a CHAR value.
func (l *List) AppendChar(v int8) { l.Chars = append(l.Chars, v) }

// AppendString appends a copy of s, owned independently of the
// caller's string.
func (l *List) AppendString(s string) { l.Strings = append(l.Strings, s) }

// AppendListCopy appends a deep copy of child.
func (l *List) AppendListCopy(child *List) { l.Lists = append(l.Lists, child.Copy()) }

// MoveList appends child without copying, taking ownership of it. The
// caller must not retain or mutate child afterward.
func (l *List) MoveList(child *List) { l.Lists = append(l.Lists, child) }

// PrependLong inserts v at position 0.
func (l *List) PrependLong(v int32) { l.InsertLong(0, v) }

// InsertLong inserts v at pos, shifting the tail right. pos must be
// <= N().
func (l *List) InsertLong(pos int, v int32) {
	l.Longs = append(l.Longs, 0)
	copy(l.Longs[pos+1:], l.Longs[pos:])
	l.Longs[pos] = v
}

// PrependShort inserts v at position 0.
func (l *List) PrependShort(v int16) { l.InsertShort(0, v) }

// InsertShort inserts v at pos, shifting the tail right.
func (l *List) InsertShort(pos int, v int16) {
	l.Shorts = append(l.Shorts, 0)
	copy(l.Shorts[pos+1:], l.Shorts[pos:])
	l.Shorts[pos] = v
}

// PrependFloat inserts v at position 0.
func (l *List) PrependFloat(v float32) { l.InsertFloat(0, v) }

// InsertFloat inserts v at pos, shifting the tail right.
func (l *List) InsertFloat(pos int, v float32) {
	l.Floats = append(l.Floats, 0)
	copy(l.Floats[pos+1:], l.Floats[pos:])
	l.Floats[pos] = v
}

// PrependChar inserts v at position 0.
func (l *List) PrependChar(v int8) { l.InsertChar(0, v) }

// InsertChar inserts v at pos, shifting the tail right.
func (l *List) InsertChar(pos int, v int8) {
	l.Chars = append(l.Chars, 0)
	copy(l.Chars[pos+1:], l.Chars[pos:])
	l.Chars[pos] = v
}

// PrependString inserts s at position 0.
func (l *List) PrependString(s string) { l.InsertString(0, s) }

// InsertString inserts a copy of s at pos, shifting the tail right.
func (l *List) InsertString(pos int, s string) {
	l.Strings = append(l.Strings, "")
	copy(l.Strings[pos+1:], l.Strings[pos:])
	l.Strings[pos] = s
}

// InsertListCopy inserts a deep copy of child at pos, shifting the
// tail right.
func (l *List) InsertListCopy(pos int, child *List) {
	l.Lists = append(l.Lists, nil)
	copy(l.Lists[pos+1:], l.Lists[pos:])
	l.Lists[pos] = child.Copy()
}

// Long returns the element at index i, bounds-checked.
func (l *List) Long(i int) int32 { return l.Longs[i] }

// Short returns the element at index i, bounds-checked.
func (l *List) Short(i int) int16 { return l.Shorts[i] }

// Float returns the element at index i, bounds-checked.
func (l *List) Float(i int) float32 { return l.Floats[i] }

// Char returns the element at index i, bounds-checked.
func (l *List) Char(i int) int8 { return l.Chars[i] }

// String returns the element at index i, bounds-checked.
func (l *List) String(i int) string { return l.Strings[i] }

// ListAt returns the child list at index i, bounds-checked.
func (l *List) ListAt(i int) *List { return l.Lists[i] }
