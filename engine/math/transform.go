package math

func TransformCreate() *Transform {
	t := &Transform{}
	t.SetPositionScale(NewVec3Zero(), NewVec3One())
	t.Local = NewMat4Identity()
	t.Parent = nil
	return t
}

func TransformFromPosition(position Vec3) *Transform {
	t := &Transform{}
	t.SetPositionScale(position, NewVec3One())
	t.Local = NewMat4Identity()
	t.Parent = nil
	return t
}

func (t *Transform) SetPositionScale(position Vec3, scale Vec3) {
	t.Position = position
	t.Scale = scale
	t.IsDirty = true
}

// GetLocal returns translation × scale, rebuilding it only when dirty.
func (t *Transform) GetLocal() Mat4 {
	if t != nil {
		if t.IsDirty {
			t.Local = NewMat4Translation(t.Position).Mul(NewMat4Scale(t.Scale))
			t.IsDirty = false
		}
		return t.Local
	}
	return NewMat4Identity()
}

// GetWorld composes the parent chain: parent world × local.
func (t *Transform) GetWorld() Mat4 {
	if t != nil {
		l := t.GetLocal()
		if t.Parent != nil {
			p := t.Parent.GetWorld()
			return p.Mul(l)
		}
		return l
	}
	return NewMat4Identity()
}
