package schema

import (
	"errors"
	"strings"
)

// Definition parsing errors.
var (
	ErrInvalidDefinition  = errors.New("invalid schema definition")
	ErrMissingOID         = errors.New("missing OID in definition")
	ErrUnterminatedString = errors.New("unterminated quoted string")
	ErrUnterminatedParens = errors.New("unterminated parentheses")
)

// ParseAttributeType parses one attributeTypes value per RFC 4512:
//
//	( 2.5.4.3 NAME ( 'cn' 'commonName' ) DESC 'Common name' SUP name
//	  EQUALITY caseIgnoreMatch SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )
func ParseAttributeType(s string) (*AttributeType, error) {
	tokens, err := definitionTokens(s)
	if err != nil {
		return nil, err
	}

	at := &AttributeType{OID: tokens[0], Usage: UserApplications}
	for i := 1; i < len(tokens); i++ {
		arg := func() (string, error) {
			i++
			if i >= len(tokens) {
				return "", ErrInvalidDefinition
			}
			return tokens[i], nil
		}

		var v string
		switch strings.ToUpper(tokens[i]) {
		case "NAME":
			if v, err = arg(); err == nil {
				at.Names = quotedNames(v)
				if len(at.Names) > 0 {
					at.Name = at.Names[0]
				}
			}
		case "DESC":
			if v, err = arg(); err == nil {
				at.Desc = unquote(v)
			}
		case "OBSOLETE":
			at.Obsolete = true
		case "SUP":
			if v, err = arg(); err == nil {
				at.Superior = unquote(v)
			}
		case "EQUALITY":
			if v, err = arg(); err == nil {
				at.Equality = unquote(v)
			}
		case "ORDERING":
			if v, err = arg(); err == nil {
				at.Ordering = unquote(v)
			}
		case "SUBSTR":
			if v, err = arg(); err == nil {
				at.Substring = unquote(v)
			}
		case "SYNTAX":
			if v, err = arg(); err == nil {
				at.Syntax = trimSyntaxBound(v)
			}
		case "SINGLE-VALUE":
			at.SingleValue = true
		case "COLLECTIVE":
			at.Collective = true
		case "NO-USER-MODIFICATION":
			at.NoUserMod = true
		case "USAGE":
			if v, err = arg(); err == nil {
				at.Usage = parseUsage(v)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return at, nil
}

// ParseMatchingRule parses one matchingRules value per RFC 4512:
//
//	( 2.5.13.2 NAME 'caseIgnoreMatch' SYNTAX 1.3.6.1.4.1.1466.115.121.1.15 )
func ParseMatchingRule(s string) (*MatchingRule, error) {
	tokens, err := definitionTokens(s)
	if err != nil {
		return nil, err
	}

	mr := &MatchingRule{OID: tokens[0]}
	for i := 1; i < len(tokens); i++ {
		arg := func() (string, error) {
			i++
			if i >= len(tokens) {
				return "", ErrInvalidDefinition
			}
			return tokens[i], nil
		}

		var v string
		switch strings.ToUpper(tokens[i]) {
		case "NAME":
			if v, err = arg(); err == nil {
				mr.Names = quotedNames(v)
				if len(mr.Names) > 0 {
					mr.Name = mr.Names[0]
				}
			}
		case "DESC":
			if v, err = arg(); err == nil {
				mr.Desc = unquote(v)
			}
		case "OBSOLETE":
			mr.Obsolete = true
		case "SYNTAX":
			if v, err = arg(); err == nil {
				mr.Syntax = trimSyntaxBound(v)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return mr, nil
}

// definitionTokens strips the outer parentheses of a definition and
// tokenizes the rest. The first token is always the OID.
func definitionTokens(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return nil, ErrInvalidDefinition
	}
	tokens, err := tokenize(strings.TrimSpace(s[1 : len(s)-1]))
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, ErrMissingOID
	}
	return tokens, nil
}

// tokenize splits a definition body on whitespace, keeping quoted strings
// intact and folding a parenthesised group ( 'a' 'b' ) or ( a $ b ) into a
// single token.
func tokenize(s string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	inQuote := false
	depth := 0

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inQuote {
			cur.WriteByte(c)
			if c == '\'' {
				inQuote = false
			}
			continue
		}
		switch c {
		case '\'':
			inQuote = true
			cur.WriteByte(c)
		case '(':
			if depth > 0 {
				cur.WriteByte(c)
			}
			depth++
		case ')':
			depth--
			if depth > 0 {
				cur.WriteByte(c)
			} else if depth == 0 {
				flush()
			}
		case ' ', '\t', '\n', '\r':
			if depth > 0 {
				cur.WriteByte(c)
			} else {
				flush()
			}
		case '$':
			if depth > 0 {
				cur.WriteByte(c)
			}
		default:
			cur.WriteByte(c)
		}
	}

	if inQuote {
		return nil, ErrUnterminatedString
	}
	if depth != 0 {
		return nil, ErrUnterminatedParens
	}
	flush()
	return tokens, nil
}

// quotedNames extracts the names of a NAME argument, which is either one
// quoted name, a parenthesised list of quoted names (already folded into
// one token by tokenize), or a bare name.
func quotedNames(s string) []string {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "'") {
		if s == "" {
			return nil
		}
		return []string{s}
	}

	var names []string
	var cur strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\'' {
			if inQuote && cur.Len() > 0 {
				names = append(names, cur.String())
				cur.Reset()
			}
			inQuote = !inQuote
			continue
		}
		if inQuote {
			cur.WriteByte(c)
		}
	}
	return names
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}

// trimSyntaxBound strips a length bound like {256} from a syntax OID.
func trimSyntaxBound(s string) string {
	s = unquote(s)
	if i := strings.Index(s, "{"); i != -1 {
		return s[:i]
	}
	return s
}

func parseUsage(s string) AttributeUsage {
	switch strings.ToLower(unquote(s)) {
	case "directoryoperation":
		return DirectoryOperation
	case "distributedoperation":
		return DistributedOperation
	case "dsaoperation":
		return DSAOperation
	default:
		return UserApplications
	}
}
