// Package noise builds short, unpredictable strings from a weighted character
// base.
//
// Each call to Generator.Generate:
//
//  1. composes a base of BaseLength characters, floor(BaseLength*SymbolRatio)
//     drawn from Symbols followed by the rest drawn from Alphanumeric;
//  2. shuffles the base with Fisher–Yates;
//  3. returns a window of MinLength..MaxLength characters at a random offset.
//
// All draws come from the injected domain.RandomSource. The base is wiped
// before Generate returns and nothing is kept between calls.
package noise
