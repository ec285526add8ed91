package pdf

import "io"

// Dict is a PDF dictionary. Unlike a plain Go map, Dict preserves the order
// in which keys were first set, so that repeated serialization of the same
// document is byte-for-byte reproducible.
type Dict struct {
	order  []Name
	vals   map[Name]Object
	sealed bool
}

// NewDict returns an empty dictionary.
func NewDict() *Dict {
	return &Dict{vals: make(map[Name]Object)}
}

// Set inserts or updates key. The first Set call for a given key fixes its
// position in iteration/serialization order; later calls update the value
// in place. Set panics with ErrWriteAfterEnd if the dictionary's owning
// Handle has already been ended.
func (d *Dict) Set(key Name, val Object) {
	if d.sealed {
		panic(ErrWriteAfterEnd)
	}
	d.forceSet(key, val)
}

// forceSet mutates the dictionary without checking whether it has been
// sealed. It exists only for Document's own bookkeeping (setting /Parent
// and /Type on an already-ended page handle while assembling the page
// tree); producers must always go through Set.
func (d *Dict) forceSet(key Name, val Object) {
	if d.vals == nil {
		d.vals = make(map[Name]Object)
	}
	if _, ok := d.vals[key]; !ok {
		d.order = append(d.order, key)
	}
	d.vals[key] = val
}

// Get returns the value for key, and whether it was present.
func (d *Dict) Get(key Name) (Object, bool) {
	if d == nil || d.vals == nil {
		return nil, false
	}
	v, ok := d.vals[key]
	return v, ok
}

// Delete removes key from the dictionary, if present. Delete panics with
// ErrWriteAfterEnd if the dictionary's owning Handle has already been
// ended.
func (d *Dict) Delete(key Name) {
	if d == nil {
		return
	}
	if d.sealed {
		panic(ErrWriteAfterEnd)
	}
	if _, ok := d.vals[key]; !ok {
		return
	}
	delete(d.vals, key)
	for i, k := range d.order {
		if k == key {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// seal marks the dictionary as closed to further mutation through Set or
// Delete.
func (d *Dict) seal() {
	d.sealed = true
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.order)
}

// Keys returns the dictionary's keys in insertion order.
func (d *Dict) Keys() []Name {
	if d == nil {
		return nil
	}
	out := make([]Name, len(d.order))
	copy(out, d.order)
	return out
}

// PDF implements [Object]: "<<" then, for each entry in insertion order,
// the key followed by its value, then ">>".
func (d *Dict) PDF(w io.Writer) error {
	if d == nil {
		_, err := io.WriteString(w, "<<>>")
		return err
	}
	if _, err := io.WriteString(w, "<<"); err != nil {
		return err
	}
	for _, key := range d.order {
		val := d.vals[key]
		if val == nil {
			continue
		}
		if err := key.PDF(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if err := val.PDF(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ">>")
	return err
}
