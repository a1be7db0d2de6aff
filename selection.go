package arbor

// selection tracks the set of selected objects in insertion order, plus a
// change flag the caller can poll once per frame.
type selection struct {
	objects []Object
	changed bool
}

func (s *selection) clear() {
	if len(s.objects) == 0 {
		return
	}
	s.objects = s.objects[:0]
	s.changed = true
}

func (s *selection) contains(o Object) bool {
	for _, x := range s.objects {
		if x == o {
			return true
		}
	}
	return false
}

func (s *selection) add(o Object) {
	if o.IsZero() || s.contains(o) {
		return
	}
	s.objects = append(s.objects, o)
	s.changed = true
}

func (s *selection) remove(o Object) {
	for i, x := range s.objects {
		if x == o {
			copy(s.objects[i:], s.objects[i+1:])
			s.objects[len(s.objects)-1] = Object{}
			s.objects = s.objects[:len(s.objects)-1]
			s.changed = true
			return
		}
	}
}

func (s *selection) toggle(o Object) {
	if s.contains(o) {
		s.remove(o)
	} else {
		s.add(o)
	}
}

// set replaces the whole selection.
func (s *selection) set(objects []Object) {
	s.objects = append(s.objects[:0], objects...)
	s.changed = true
}

func (s *selection) anyOfKind(kind ObjectKind) bool {
	for _, o := range s.objects {
		if o.Kind() == kind {
			return true
		}
	}
	return false
}
