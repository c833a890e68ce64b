package saves

// Profile is a folder of savefiles a player switches between. Besides the
// tree it keeps SaveListEntries, the flattened list shown to the user.
//
// The list is recomputed by UpdateSaveListEntries, never observed live. The
// methods on Profile that change the tree recompute it before returning;
// callers that mutate items directly must call UpdateSaveListEntries
// themselves.
type Profile struct {
	*Folder
	game    string
	entries []Item
}

// NewProfile wraps folder as a profile of game.
func NewProfile(folder *Folder, game string) *Profile {
	p := &Profile{Folder: folder, game: game}
	p.UpdateSaveListEntries()
	return p
}

// Game returns the name of the game the profile belongs to.
func (p *Profile) Game() string { return p.game }

// SaveListEntries returns the flattened view: the profile's children, depth
// first, descending only into open folders.
func (p *Profile) SaveListEntries() []Item {
	return p.entries
}

// UpdateSaveListEntries recomputes SaveListEntries from the current tree.
func (p *Profile) UpdateSaveListEntries() {
	entries := make([]Item, 0, len(p.entries))
	p.entries = flatten(p.Folder, entries)
}

func flatten(folder *Folder, entries []Item) []Item {
	for _, child := range folder.children {
		entries = append(entries, child)
		if sub, ok := child.(*Folder); ok && sub.open {
			entries = flatten(sub, entries)
		}
	}
	return entries
}

// Depth returns how many folders lie between the profile and item; direct
// children have depth 0. Items outside the profile return -1.
func (p *Profile) Depth(item Item) int {
	depth := 0
	for parent := item.Parent(); parent != nil; parent = parent.Parent() {
		if parent == p.Folder {
			return depth
		}
		depth++
	}
	return -1
}

// LoadChildren reloads the tree from disk and recomputes the list.
func (p *Profile) LoadChildren() error {
	err := p.Folder.LoadChildren()
	p.UpdateSaveListEntries()
	return err
}

// SetOpen opens or closes folder and recomputes the list.
func (p *Profile) SetOpen(folder *Folder, open bool) {
	folder.SetOpen(open)
	p.UpdateSaveListEntries()
}

// Toggle flips folder's open state and recomputes the list.
func (p *Profile) Toggle(folder *Folder) {
	p.SetOpen(folder, !folder.IsOpen())
}

// CreateFolder creates a folder called name inside parent.
func (p *Profile) CreateFolder(parent *Folder, name string) (*Folder, error) {
	defer p.UpdateSaveListEntries()
	return parent.CreateChild(name)
}

// RenameItem renames item to newName.
func (p *Profile) RenameItem(item Item, newName string) error {
	defer p.UpdateSaveListEntries()
	return item.Rename(newName)
}

// DeleteItem deletes item from disk and from the tree.
func (p *Profile) DeleteItem(item Item) error {
	defer p.UpdateSaveListEntries()
	return item.Delete()
}

// MoveItem moves item into newParent. Only this profile's list is
// recomputed: when newParent belongs to another profile, that profile must
// call UpdateSaveListEntries itself.
func (p *Profile) MoveItem(item Item, newParent *Folder) error {
	defer p.UpdateSaveListEntries()
	return item.Move(newParent)
}

// CopySavefile copies save into dst with a unique name. As with MoveItem, a
// dst in another profile leaves that profile's list to its owner.
func (p *Profile) CopySavefile(save *Savefile, dst *Folder) (*Savefile, error) {
	defer p.UpdateSaveListEntries()
	return save.CopyTo(dst)
}
