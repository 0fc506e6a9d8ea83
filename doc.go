/*

Package argon2 implements the Argon2 password hashing function, winner of
the Password Hashing Competition, as specified in the document

	https://github.com/P-H-C/phc-winner-argon2/raw/master/argon2-specs.pdf

Argon2 comes in two flavors:

Argon2i uses data-independent memory access, making it suitable for hashing
secret information such as passwords.

Argon2d uses data-dependent memory access, which gives better resistance to
time-memory tradeoff attacks but is not suitable for hashing secret
information when side channels are a concern.

Both version 0x10 and version 0x13 of the function are supported. Output is
byte-identical to the reference implementation for matching inputs.

*/
package argon2
