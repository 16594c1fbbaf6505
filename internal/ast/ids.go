package ast

type (
	// FileID identifies a parsed file inside a Builder.
	FileID uint32
	// ItemID identifies one declaration node.
	ItemID uint32
	// PayloadID indexes the kind-specific payload arena of an Item.
	PayloadID uint32
)

const (
	NoFileID    FileID    = 0
	NoItemID    ItemID    = 0
	NoPayloadID PayloadID = 0
)

func (id FileID) IsValid() bool    { return id != NoFileID }
func (id ItemID) IsValid() bool    { return id != NoItemID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
