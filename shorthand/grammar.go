package shorthand

// Grammar structs for participle parser.

type expression struct {
	Nodes []*node `parser:"@@*"`
}

type node struct {
	Class   *valueNode `parser:"(  ('class' | 'cc') @@"`
	Anchor  *valueNode `parser:" | ('anchor' | 'at') @@"`
	Group   *groupNode `parser:" | @@"`
	Literal *string    `parser:" | @String )"`
	Quant   *quant     `parser:"@@?"`
}

type valueNode struct {
	Value string `parser:"@(Ident | String | Token)"`
}

type groupNode struct {
	Kind  string  `parser:"@('group' | 'nc' | 'named')"`
	Name  string  `parser:"@Ident?"`
	Nodes []*node `parser:"'(' @@* ')'"`
}

type quant struct {
	Op   string `parser:"(  @('*' | '+' | '?')"`
	Min  *int   `parser:" | '{' @Int"`
	Max  *int   `parser:"   (',' @Int)? '}' )"`
	Lazy bool   `parser:"@'?'?"`
}
